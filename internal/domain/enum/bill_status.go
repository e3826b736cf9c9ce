package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillStatus represents the lifecycle state of a bill
type BillStatus int

const (
	BillStatusDraft BillStatus = 0
	BillStatusFinal BillStatus = 1
	BillStatusPaid  BillStatus = 2
)

func (s BillStatus) String() string {
	return [...]string{"Draft", "Final", "Paid"}[s]
}

func (s BillStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BillStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = BillStatusDraft
	case "Final":
		*s = BillStatusFinal
	case "Paid":
		*s = BillStatusPaid
	}
	return nil
}

func (s BillStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *BillStatus) Scan(value interface{}) error {
	if value == nil {
		*s = BillStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = BillStatus(v)
	case int:
		*s = BillStatus(v)
	}
	return nil
}
