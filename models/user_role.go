package models

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleEvaluator UserRole = "EVALUATOR"
	UserRoleEmployee  UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:     "Администратор",
	UserRoleEvaluator: "Оценщик",
	UserRoleEmployee:  "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

const SystemUser = "system"
