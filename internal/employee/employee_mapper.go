package employee

// mapToResponse copies the linked department id and name when the relation
// is loaded. DepartmentName is read convenience only, never written back.
func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		Email:        empl.Email,
		DepartmentID: empl.DepartmentID,
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
