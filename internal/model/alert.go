package model

// AlertKind tells the UI how to style an alert. It carries no behavior.
type AlertKind string

const (
	AlertEmotional  AlertKind = "emotional"
	AlertLimit      AlertKind = "limit"
	AlertTrend      AlertKind = "trend"
	AlertProjection AlertKind = "projection"
	AlertReward     AlertKind = "reward"
	AlertEmergency  AlertKind = "emergency"
	AlertTip        AlertKind = "tip"
)

// Alert is one user-facing notification.
type Alert struct {
	Text string    `json:"text"`
	Kind AlertKind `json:"kind"`
}
