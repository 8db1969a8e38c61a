package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/arshopsy/arshopsy/internal/flagx"
	"github.com/arshopsy/arshopsy/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30m"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	PaymentDelay                timex.Duration `json:"payment_delay"`
	PaymentSuccessRate          float64        `json:"payment_success_rate"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	FeedbackRelayEndpoint       string         `json:"feedback_relay_endpoint"`
	FeedbackRelayUsername       string         `json:"feedback_relay_username"`
	FeedbackRelayPassword       string         `json:"feedback_relay_password"`
	FeedbackRelayFrom           string         `json:"feedback_relay_from"`
	FeedbackRelayTo             string         `json:"feedback_relay_to"`
	FeedbackRelaySubject        string         `json:"feedback_relay_subject"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config command-line flags; when neither is set,
// nothing is loaded. Read or unmarshal errors panic, as the process cannot
// start from a broken config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.PaymentDelay = time.Duration(c.PaymentDelay.Duration)
	config.PaymentSuccessRate = c.PaymentSuccessRate
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.FeedbackRelay.Endpoint = c.FeedbackRelayEndpoint
	config.FeedbackRelay.Username = c.FeedbackRelayUsername
	config.FeedbackRelay.Password = c.FeedbackRelayPassword
	config.FeedbackRelay.From = c.FeedbackRelayFrom
	config.FeedbackRelay.To = c.FeedbackRelayTo
	config.FeedbackRelay.Subject = c.FeedbackRelaySubject
}
