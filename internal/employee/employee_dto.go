package employee

type CreateEmployeeRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// UpdateEmployeeRequest carries full-replace semantics. An id, when carried,
// must match the path id.
type UpdateEmployeeRequest struct {
	ID           *int64 `json:"id"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// PatchEmployeeRequest overwrites only the fields present in the body;
// absent fields are left untouched.
type PatchEmployeeRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email" binding:"omitempty,email"`
	DepartmentID *int64  `json:"departmentId" binding:"omitempty,gt=0"`
}

type EmployeeResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	DepartmentID   *int64 `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
}
