package config

// SecretValue hides its content when printed or logged.
type SecretValue string

func (s SecretValue) Value() string {
	return string(s)
}

func (s SecretValue) String() string {
	if s == "" {
		return ""
	}
	return "*******"
}

func (s SecretValue) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
