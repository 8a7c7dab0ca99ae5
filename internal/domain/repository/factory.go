package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Parcels() ParcelRepository
	Payments() PaymentRepository
	Riders() RiderRepository
}
