package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is returned by mutations that produce no body.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=4"`
}

// --- Entries ---

type createEntryRequest struct {
	Start      string `json:"start"      validate:"required"`
	End        string `json:"end"        validate:"required"`
	Engagement string `json:"engagement" validate:"required"`
	Activity   string `json:"activity"   validate:"required"`
	Location   string `json:"location"`
	Details    string `json:"details"`
}

type createEntryResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type updateEntryRequest struct {
	Start      string `json:"start"      validate:"required"`
	End        string `json:"end"        validate:"required"`
	Engagement string `json:"engagement" validate:"required"`
	Activity   string `json:"activity"   validate:"required"`
	Location   string `json:"location"`
	Details    string `json:"details"`
}

// --- Users ---

type roleResponse struct {
	Role string `json:"role"`
}

// --- References ---

// locationOption is the value/label pair the calendar's select widget binds to.
type locationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// --- Export ---

type exportRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   validate:"required,datetime=2006-01-02"`
	// UserID limits the export to one user; empty exports every user and
	// requires the ExportAll capability.
	UserID string `json:"userId"`
	Format string `json:"format" validate:"omitempty,oneof=csv xlsx"`
}
