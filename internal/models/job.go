package models

type Job struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Salary      string `json:"salary"`
	Description string `gorm:"type:text" json:"description"`
	EmployerID  string `gorm:"type:uuid;not null;index" json:"employer_id"`
}
