package wafcdk

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// infof attaches an info message to the scope's synth output.
func infof(scope constructs.Construct, format string, args ...any) {
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(fmt.Sprintf(format, args...)))
}

// warnf attaches a warning to the scope's synth output. Warnings don't fail
// synthesis, they describe ignored inputs or checks deferred to deploy time.
func warnf(scope constructs.Construct, format string, args ...any) {
	awscdk.Annotations_Of(scope).AddWarning(jsii.String(fmt.Sprintf(format, args...)))
}
