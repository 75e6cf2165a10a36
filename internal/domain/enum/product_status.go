package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductStatus represents the lifecycle state of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known status value
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

func (s ProductStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ProductStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ProductStatus(str)
	return nil
}

func (s ProductStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ProductStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ProductStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ProductStatus(v)
	case []byte:
		*s = ProductStatus(string(v))
	}
	return nil
}
