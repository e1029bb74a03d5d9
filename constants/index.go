package constants

// Staff and guest roles.
const (
	ROLE_ADMIN        = "admin"
	ROLE_MANAGER      = "manager"
	ROLE_RECEPTIONIST = "receptionist"
	ROLE_HOUSEKEEPING = "housekeeping"
	ROLE_GUEST        = "guest"
)

// API messages.
const (
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Incorrect password"
	ACCOUNT_NOT_ACTIVE         = "Account is disabled"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	FORBIDDEN                  = "You don't have permission to perform this action"

	ROOM_NOT_AVAILABLE      = "Room is already booked for the selected dates"
	ROOM_HAS_BOOKINGS       = "Room cannot be deleted while bookings reference it"
	CHECKIN_NOT_PAID        = "Cannot check in until payment is completed"
	CHECKIN_TOO_EARLY       = "Cannot check in before the check-in date"
	CHECKIN_WRONG_STATUS    = "Only pending bookings can be checked in"
	CHECKOUT_WRONG_STATUS   = "Only bookings that are currently 'Checked In' can be checked out"
	CANCEL_WRONG_STATUS     = "Only pending bookings can be canceled"
	ALREADY_PAID            = "This booking is already marked as paid"
	PAYMENT_VERIFY_FAILED   = "Payment verification failed"
	BOOKING_NOT_FOUND       = "Booking not found"
	DUPLICATE_ATTENDANCE    = "Attendance already marked for this date"
	DUPLICATE_FEEDBACK      = "Feedback has already been submitted for this stay"
	INSUFFICIENT_STOCK      = "Not enough stock for the requested usage"
	RESET_TOKEN_INVALID     = "Reset token is invalid or has expired"
	CHECKOUT_BEFORE_CHECKIN = "Check-out must be after check-in"
	CHECKIN_IN_PAST         = "Check-in date cannot be in the past"
)
