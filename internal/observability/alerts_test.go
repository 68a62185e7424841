package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

type alertGroup struct {
	Name  string      `yaml:"name"`
	Rules []alertRule `yaml:"rules"`
}

type ruleFile struct {
	Groups []alertGroup `yaml:"groups"`
}

func TestEmployeeAlertRules(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "deploy", "prometheus", "alerts", "employees.yml"))
	require.NoError(t, err)

	var file ruleFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.Len(t, file.Groups, 1)
	require.Equal(t, "employees", file.Groups[0].Name)

	expected := map[string]string{
		"EmployeesHighErrorRate":        "critical",
		"EmployeesHighLatency":          "warning",
		"EmployeesAuthorizationDenials": "warning",
	}
	rules := file.Groups[0].Rules
	require.Len(t, rules, len(expected))

	for _, rule := range rules {
		severity, ok := expected[rule.Alert]
		require.Truef(t, ok, "unexpected rule %q", rule.Alert)
		require.Equalf(t, severity, rule.Labels["severity"], "rule %s severity", rule.Alert)
		require.NotEmptyf(t, rule.Annotations["summary"], "rule %s summary", rule.Alert)
		require.NotEmptyf(t, rule.Annotations["description"], "rule %s description", rule.Alert)
		require.NotEmptyf(t, rule.For, "rule %s hold duration", rule.Alert)
		require.Truef(t, strings.Contains(rule.Expr, "employees_"), "rule %s must query service metrics", rule.Alert)
	}
}
