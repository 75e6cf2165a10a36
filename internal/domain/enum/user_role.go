package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// UserRole represents the role assigned to a user account
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCashier UserRole = "cashier"
)

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether r is a known role value
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleCashier
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = UserRole(str)
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleCashier
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(string(v))
	}
	return nil
}
