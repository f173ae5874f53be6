//go:build integration

// Package integration runs the Gherkin features in features/ against the API
// served in-process.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/money-manager/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:   envOr("GODOG_FORMAT", "pretty"),
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Tags:     os.Getenv("GODOG_TAGS"),
		Strict:   true,
		TestingT: t,
		// scenarios share one database and one clock
		Concurrency: 1,
	}

	suite := godog.TestSuite{
		Name:                 "money-manager-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run exited with status %d", status)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
