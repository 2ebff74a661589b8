package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "Admin"
	UserRoleHR        UserRole = "HR"
	UserRoleIT        UserRole = "IT"
	UserRoleManager   UserRole = "Manager"
	UserRoleFinance   UserRole = "Finance"
	UserRoleCandidate UserRole = "Candidate"
	UserRoleEmployee  UserRole = "Employee"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleHR, UserRoleIT, UserRoleManager,
		UserRoleFinance, UserRoleCandidate, UserRoleEmployee:
		return true
	}
	return false
}

func (r UserRole) In(roles ...UserRole) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

const SystemUser = "Система"

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "Finance"
	DepartmentManagement Department = "Management"
	DepartmentCandidate  Department = "Candidate"
	DepartmentEmployee   Department = "Employee"
)

// подразделение по умолчанию для роли, когда в запросе не указано
var roleDefaultDepartment = map[UserRole]Department{
	UserRoleHR:        DepartmentHR,
	UserRoleIT:        DepartmentIT,
	UserRoleManager:   DepartmentManagement,
	UserRoleFinance:   DepartmentFinance,
	UserRoleCandidate: DepartmentCandidate,
	UserRoleEmployee:  DepartmentEmployee,
}

func (r UserRole) DefaultDepartment() Department {
	return roleDefaultDepartment[r]
}

// отделы, по которым заводятся тикеты
func TicketDepartments() []Department {
	return []Department{DepartmentIT, DepartmentHR, DepartmentFinance}
}

func (d Department) IsTicketDepartment() bool {
	for _, dept := range TicketDepartments() {
		if d == dept {
			return true
		}
	}
	return false
}
