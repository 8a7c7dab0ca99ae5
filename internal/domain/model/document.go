package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Document is a schemaless store record. Parcels and riders are accepted
// from clients as-is and must survive a store round trip unchanged, so they
// are carried as raw documents rather than fixed structs.
type Document = bson.M

// SignInResult reports the outcome of observing a user sign-in.
type SignInResult struct {
	Inserted   bool
	InsertedID string
}
