package school

// SchoolSubmission is the shared validation schema for a new directory
// entry. The `validate` tags are what the ingestion handler enforces; the
// `formrule` tags are the extra format checks the submission form runs
// before sending anything (see internal/pkg/validator).
type SchoolSubmission struct {
	Name    string `form:"name" validate:"required"`
	Address string `form:"address" validate:"required"`
	City    string `form:"city" validate:"required"`
	State   string `form:"state" validate:"required"`
	Contact string `form:"contact" validate:"required" formrule:"omitempty,len=10,numeric"`
	Email   string `form:"email" validate:"required" formrule:"omitempty,email"`
}

// CreateResponse is the 201 body for POST /api/schools.
type CreateResponse struct {
	Message string  `json:"message"`
	ID      int64   `json:"id"`
	Image   *string `json:"image"`
}
