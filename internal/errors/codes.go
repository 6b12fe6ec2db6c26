package errors

// Error code constants returned in error responses.
// Format: CATEGORY_SPECIFIC_DETAIL. Clients map these to display copy.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // one or more form fields rejected
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // malformed id path parameter
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // unparseable value (e.g. timestamp)
	ValidationRequired      = "VALIDATION_REQUIRED"       // required field missing

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Venues (VENUE_) ====================
	VenueNotFound     = "VENUE_NOT_FOUND"
	VenueCreateFailed = "VENUE_CREATE_FAILED"
	VenueUpdateFailed = "VENUE_UPDATE_FAILED"
	VenueDeleteFailed = "VENUE_DELETE_FAILED"

	// ==================== Artists (ARTIST_) ====================
	ArtistNotFound     = "ARTIST_NOT_FOUND"
	ArtistCreateFailed = "ARTIST_CREATE_FAILED"
	ArtistUpdateFailed = "ARTIST_UPDATE_FAILED"

	// ==================== Shows (SHOW_) ====================
	ShowVenueMissing  = "SHOW_VENUE_MISSING"  // referenced venue id does not exist
	ShowArtistMissing = "SHOW_ARTIST_MISSING" // referenced artist id does not exist
	ShowCreateFailed  = "SHOW_CREATE_FAILED"

	// ==================== Routing (ROUTE_) ====================
	RouteNotFound = "ROUTE_NOT_FOUND"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
