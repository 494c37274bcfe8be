package models

// ApplicationStatus - этап воронки найма, на котором находится отклик
type ApplicationStatus string

const (
	ApplicationStatusApplied       ApplicationStatus = "applied"
	ApplicationStatusScreening     ApplicationStatus = "screening"
	ApplicationStatusInterview     ApplicationStatus = "interview"
	ApplicationStatusPreHireChecks ApplicationStatus = "pre_hire_checks"
	ApplicationStatusHired         ApplicationStatus = "hired"
	ApplicationStatusRejected      ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn     ApplicationStatus = "withdrawn"
)

// ApplicationStageOrder - порядок колонок канбана, включая терминальные этапы
var ApplicationStageOrder = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusScreening,
	ApplicationStatusInterview,
	ApplicationStatusPreHireChecks,
	ApplicationStatusHired,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:       "Откликнулся",
	ApplicationStatusScreening:     "Скрининг",
	ApplicationStatusInterview:     "Интервью",
	ApplicationStatusPreHireChecks: "Проверка перед наймом",
	ApplicationStatusHired:         "Принят",
	ApplicationStatusRejected:      "Отклонен",
	ApplicationStatusWithdrawn:     "Отозван",
}

// applicationTransitions - допустимые переводы между этапами,
// все остальные пары отклоняются.
// Единственное санкционированное исключение - автоперевод на этап
// "Проверка перед наймом" при подтверждении права на работу (lib/pipeline)
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:       {ApplicationStatusScreening, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusScreening:     {ApplicationStatusInterview, ApplicationStatusRejected},
	ApplicationStatusInterview:     {ApplicationStatusPreHireChecks, ApplicationStatusRejected},
	ApplicationStatusPreHireChecks: {ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusScreening},
	ApplicationStatusHired:         {ApplicationStatusRejected},
	ApplicationStatusRejected:      {},
	ApplicationStatusWithdrawn:     {},
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, exist := applicationTransitions[s]
	return exist
}

// IsTerminal - этап без исходящих переводов
func (s ApplicationStatus) IsTerminal() bool {
	return len(applicationTransitions[s]) == 0
}

func (s ApplicationStatus) CanMoveTo(newStatus ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
