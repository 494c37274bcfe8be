package wsmodels

type ServerMessage struct {
	ToOrgID string         `json:"-"`
	Time    string         `json:"time"`           // время события
	Code    string         `json:"code"`           // код события
	Msg     string         `json:"msg"`            // текст события
	Data    map[string]any `json:"data,omitempty"` // данные события
}

const (
	CodeApplicationMoved   = "application_moved"
	CodeApplicationCreated = "application_created"
)
