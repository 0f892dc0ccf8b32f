package models

// AlertCategory - верхнеуровневый класс тревоги
type AlertCategory string

const (
	CategorySOS         AlertCategory = "SOS"
	CategoryNonCritical AlertCategory = "Non-Critical"
)

// Valid сообщает, известна ли категория
func (c AlertCategory) Valid() bool {
	return c == CategorySOS || c == CategoryNonCritical
}

// AlertSubtype - конкретное условие, вызвавшее тревогу
type AlertSubtype string

const (
	SubtypeHeartBeatAnomaly AlertSubtype = "heartBeatAnomaly"
	SubtypeCollision        AlertSubtype = "collision"
	SubtypeModuleFailure    AlertSubtype = "moduleFailure"
)

// Пороговые значения пульса. Пока не используются ни одной операцией.
const (
	HRLowThreshold  = 40
	HRHighThreshold = 150
)

// AlertData - дополнительные данные, специфичные для подтипа
type AlertData struct {
	Message           string   `json:"message,omitempty"`
	LastBPM           *float64 `json:"lastBPM,omitempty"`
	AvgBPM            *float64 `json:"avgBPM,omitempty"`
	CollisionSeverity string   `json:"collisionSeverity,omitempty"`
	ModuleName        string   `json:"moduleName,omitempty"`
}

// AlertRecord - сообщение тревоги, отправляемое наружу
type AlertRecord struct {
	Type        AlertCategory `json:"type"`
	AlertType   string        `json:"alertType"`
	Subtype     AlertSubtype  `json:"-"`
	UserID      string        `json:"userId"`
	GPSLocation string        `json:"gpsLocation"`
	Timestamp   string        `json:"timestamp"`
	Message     string        `json:"message"`

	// heartBeatAnomaly
	LastBPM *float64 `json:"lastBPM,omitempty"`
	AvgBPM  *float64 `json:"avgBPM,omitempty"`

	// collision
	CollisionSeverity string `json:"collisionSeverity,omitempty"`

	// moduleFailure
	ModuleName string `json:"moduleName,omitempty"`
}
