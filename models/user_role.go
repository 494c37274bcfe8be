package models

type UserRole string

const (
	OrgAdminRole       UserRole = "ORG_ADMIN_ROLE"
	OrgRecruiterRole   UserRole = "ORG_RECRUITER_ROLE"
	CandidateRole      UserRole = "CANDIDATE_ROLE"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

var roleHumanName = map[UserRole]string{
	OrgAdminRole:       "Администратор организации",
	OrgRecruiterRole:   "Рекрутер",
	CandidateRole:      "Соискатель",
	UserRoleSuperAdmin: "Суперадмин системы",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsOrgAdmin() bool {
	return r == OrgAdminRole
}

const (
	SystemUser    = "Система"
	CandidateUser = "Соискатель"
)
