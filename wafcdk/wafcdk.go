// Package wafcdk contains CDK constructs that front an existing HTTP API with
// a WAF-protected CloudFront distribution, optionally bound to a custom
// domain with an ACM certificate and Route53 alias records.
package wafcdk

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// ScopeName is the name of a scope.
type ScopeName string

// ChildScope returns a new scope named 'name'.
func (sn ScopeName) ChildScope(parent constructs.Construct) constructs.Construct {
	return constructs.NewConstruct(parent, jsii.String(sn.String()))
}

func (sn ScopeName) String() string {
	return string(sn)
}
