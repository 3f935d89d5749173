package wafcdk

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awswafv2"
	"github.com/aws/jsii-runtime-go"
)

// DefaultRules returns the two AWS managed rule groups that protect the
// distribution when the caller supplies no rules of their own: the Amazon IP
// reputation list at priority 1 and the common rule set at priority 2. Both
// defer to the rule group's own verdict and have metrics and request
// sampling enabled.
func DefaultRules() *[]*awswafv2.CfnWebACL_RuleProperty {
	return &[]*awswafv2.CfnWebACL_RuleProperty{
		managedRuleGroup("AWSManagedRulesAmazonIpReputationList", 1),
		managedRuleGroup("AWSManagedRulesCommonRuleSet", 2),
	}
}

// resolveRules passes caller rules through verbatim: ordering is preserved
// and priority uniqueness stays the caller's responsibility.
func resolveRules(rules *[]*awswafv2.CfnWebACL_RuleProperty) *[]*awswafv2.CfnWebACL_RuleProperty {
	if rules != nil {
		return rules
	}

	return DefaultRules()
}

func managedRuleGroup(name string, priority float64) *awswafv2.CfnWebACL_RuleProperty {
	return &awswafv2.CfnWebACL_RuleProperty{
		Name:     jsii.String("AWS-" + name),
		Priority: jsii.Number(priority),
		Statement: &awswafv2.CfnWebACL_StatementProperty{
			ManagedRuleGroupStatement: &awswafv2.CfnWebACL_ManagedRuleGroupStatementProperty{
				VendorName: jsii.String("AWS"),
				Name:       jsii.String(name),
			},
		},
		OverrideAction: &awswafv2.CfnWebACL_OverrideActionProperty{
			None: &map[string]any{},
		},
		VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
			CloudWatchMetricsEnabled: jsii.Bool(true),
			MetricName:               jsii.String(name),
			SampledRequestsEnabled:   jsii.Bool(true),
		},
	}
}
