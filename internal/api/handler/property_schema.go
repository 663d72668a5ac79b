package handler

type createPropertyRequest struct {
	Title         string  `json:"title"         validate:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location"      validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	Image         string  `json:"image"`
	HostEmail     string  `json:"hostEmail"     validate:"omitempty,email"`
}

// updatePropertyRequest is a partial update; omitted fields keep their
// stored values.
type updatePropertyRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	Image         string  `json:"image"`
}

type deletePropertyResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}
