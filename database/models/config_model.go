package models

// Config is a key/value row used for operational state: the leader election
// lease and the last-run marks of the batch jobs.
type Config struct {
	Key string `json:"key" gorm:"primaryKey;type:text"`
	Val string `json:"val" gorm:"type:text"`
}

func (c Config) TableName() string {
	return "config"
}
