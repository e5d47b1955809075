package models

// Metric — одно синтетическое значение здоровья на дашборде.
// Value может быть числом (пульс, вес) или строкой (давление "120/80").
type Metric struct {
	Value  any    `json:"value"`
	Status string `json:"status"`
	Trend  string `json:"trend"`
}

// HealthMetrics — набор синтетических показателей здоровья пользователя.
// Значения генерируются на каждый запрос и не связаны с сохранёнными анализами.
type HealthMetrics struct {
	HeartRate     Metric `json:"heart_rate"`
	BloodPressure Metric `json:"blood_pressure"`
	Weight        Metric `json:"weight"`
	RiskScore     Metric `json:"risk_score"`
}

// DashboardStats — счётчики для дашборда пользователя.
type DashboardStats struct {
	TotalAnalyses        int `json:"total_analyses"`
	ActiveTreatments     int `json:"active_treatments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
}

// UserSummary — краткая карточка пользователя на дашборде.
type UserSummary struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	SubscriptionPlan string `json:"subscription_plan"`
}

// Dashboard — полный снимок дашборда пользователя.
type Dashboard struct {
	User           UserSummary       `json:"user"`
	Stats          DashboardStats    `json:"stats"`
	HealthMetrics  HealthMetrics     `json:"health_metrics"`
	RecentAnalyses []AnalysisSummary `json:"recent_analyses"`
}
