package history

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is one persisted analysis.
type AnalysisRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CacheKey   string    `gorm:"type:varchar(64);index" json:"cache_key"`
	Score      int       `json:"score"`
	JobFit     int       `json:"job_fit"`
	MatchType  string    `gorm:"type:varchar(32)" json:"match_type"`
	Industry   string    `gorm:"type:text" json:"industry"`
	Role       string    `gorm:"type:text" json:"role"`
	Generic    bool      `json:"generic"`
	AIEnhanced bool      `json:"ai_enhanced"`
	FromCache  bool      `json:"from_cache"`
	Fallback   bool      `json:"fallback"`
	Report     string    `gorm:"type:text" json:"report"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analyses"
}
