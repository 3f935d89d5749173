package wafcdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
	"github.com/mitchellh/copystructure"
)

// Config describes the providing of resource configuration that is often
// convenient to be shared between branches of the resource tree.
type Config interface {
	Copy(opts ...ConfigOpt) Config

	DistributionPriceClass() awscloudfront.PriceClass
	DistributionHttpVersion() awscloudfront.HttpVersion
	DistributionMinimumTLSVersion() awscloudfront.SecurityPolicyProtocol
	OriginReadTimeout() awscdk.Duration
	OriginKeepaliveTimeout() awscdk.Duration
	WebACLMetricName() *string
}

type config struct {
	OriginReadTimeoutVal      awscdk.Duration `copy:"shallow"`
	OriginKeepaliveTimeoutVal awscdk.Duration `copy:"shallow"`

	DistributionPriceClassVal        awscloudfront.PriceClass
	DistributionHttpVersionVal       awscloudfront.HttpVersion
	DistributionMinimumTLSVersionVal awscloudfront.SecurityPolicyProtocol
	WebACLMetricNameVal              *string
}

// ConfigOpt describes a configuration option.
type ConfigOpt func(*config)

// WithDistributionPriceClass config.
func WithDistributionPriceClass(v awscloudfront.PriceClass) ConfigOpt {
	return func(c *config) { c.DistributionPriceClassVal = v }
}

// WithDistributionHttpVersion config.
func WithDistributionHttpVersion(v awscloudfront.HttpVersion) ConfigOpt {
	return func(c *config) { c.DistributionHttpVersionVal = v }
}

// WithDistributionMinimumTLSVersion config.
func WithDistributionMinimumTLSVersion(v awscloudfront.SecurityPolicyProtocol) ConfigOpt {
	return func(c *config) { c.DistributionMinimumTLSVersionVal = v }
}

// WithOriginReadTimeout config.
func WithOriginReadTimeout(v awscdk.Duration) ConfigOpt {
	return func(c *config) { c.OriginReadTimeoutVal = v }
}

// WithOriginKeepaliveTimeout config.
func WithOriginKeepaliveTimeout(v awscdk.Duration) ConfigOpt {
	return func(c *config) { c.OriginKeepaliveTimeoutVal = v }
}

// WithWebACLMetricName config.
func WithWebACLMetricName(v *string) ConfigOpt {
	return func(c *config) { c.WebACLMetricNameVal = v }
}

// NewConfig initializes a config implementation given the provided values.
func NewConfig(opts ...ConfigOpt) Config {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// Copy returns a copy of the config while allowing certain options to be changed.
func (c config) Copy(opts ...ConfigOpt) Config {
	v, err := copystructure.Copy(c)
	if err != nil {
		panic("wafcdk: failed to deep copy: " + err.Error())
	}

	cfg, _ := v.(config)
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// DistributionPriceClass config.
func (c config) DistributionPriceClass() awscloudfront.PriceClass { return c.DistributionPriceClassVal }

// DistributionHttpVersion config.
func (c config) DistributionHttpVersion() awscloudfront.HttpVersion {
	return c.DistributionHttpVersionVal
}

// DistributionMinimumTLSVersion config.
func (c config) DistributionMinimumTLSVersion() awscloudfront.SecurityPolicyProtocol {
	return c.DistributionMinimumTLSVersionVal
}

// OriginReadTimeout config.
func (c config) OriginReadTimeout() awscdk.Duration { return c.OriginReadTimeoutVal }

// OriginKeepaliveTimeout config.
func (c config) OriginKeepaliveTimeout() awscdk.Duration { return c.OriginKeepaliveTimeoutVal }

// WebACLMetricName config.
func (c config) WebACLMetricName() *string { return c.WebACLMetricNameVal }

// NewDefaultConfig provides a config with defaults that match how the
// distribution is typically deployed in front of an HTTP API.
func NewDefaultConfig() Config {
	return NewConfig(
		WithDistributionPriceClass(awscloudfront.PriceClass_PRICE_CLASS_ALL),
		WithDistributionHttpVersion(awscloudfront.HttpVersion_HTTP2_AND_3),
		WithDistributionMinimumTLSVersion(awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2021),
		WithOriginReadTimeout(awscdk.Duration_Seconds(jsii.Number(30))),   //nolint:gomnd
		WithOriginKeepaliveTimeout(awscdk.Duration_Seconds(jsii.Number(5))), //nolint:gomnd
		WithWebACLMetricName(jsii.String("ProtectedHttpApiAcl")),
	)
}
