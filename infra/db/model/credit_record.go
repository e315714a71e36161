package model

// CreditRecord is one raw CRM record mirrored for a customer. Payload holds
// the record JSON exactly as received.
type CreditRecord struct {
	ID         int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CustomerID string `gorm:"size:100;not null;index" json:"customer_id"`
	BatchID    string `gorm:"size:36;not null;index" json:"batch_id"`
	Payload    string `gorm:"type:text;not null" json:"payload"`
	CreateTime int64  `gorm:"not null" json:"create_time"`
	CreateBy   string `gorm:"size:100;not null" json:"create_by"`
}
