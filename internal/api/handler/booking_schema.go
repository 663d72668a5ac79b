package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createBookingRequest struct {
	HotelID     string `json:"hotelId"     validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	UserEmail   string `json:"userEmail"   validate:"required,email"`
	GuestName   string `json:"guestName"`
	Guests      int    `json:"guests"      validate:"omitempty,min=1"`
}

type bookingCreatedResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

// messageResponse carries the non-error "already exists" outcome and
// other confirmation messages.
type messageResponse struct {
	Message string `json:"message"`
}

type updateBookingRequest struct {
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"`
}
