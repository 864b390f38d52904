package employee

// Employee is a directory entry from the employee service
type Employee struct {
	ID          string
	Name        string
	Email       string
	Designation string
	DateOfBirth string
	PhoneNumber string
	Address     string
	Age         int
	BloodType   string
	CTC         string
	ShiftHours  ShiftHours
}
