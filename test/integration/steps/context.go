// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/infra/dependency"
	"github.com/money-manager/backend/internal/integration/adapters"
	"github.com/money-manager/backend/internal/integration/persistence/model"
	"github.com/money-manager/backend/test/integration/mock"
)

const (
	testJWTSecret       = "test-jwt-secret-key-for-testing-purposes"
	defaultTestPassword = "Password123!"
	loginAttemptLimit   = 5
)

// suite holds the resources shared by every scenario of a run.
type suite struct {
	server   *httptest.Server
	db       *mock.Db
	redis    *redis.Client
	timeMock *mock.Time
	injector *dependency.Injector
	tokens   adapter.TokenService
}

var shared *suite

// testContext holds the state of one scenario.
type testContext struct {
	*suite
	client    *http.Client
	headers   map[string]string
	token     string
	response  *response
	users     map[string]uuid.UUID
	variables map[string]string
}

type response struct {
	status int
	header http.Header
	raw    string
	body   any
	isJSON bool
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT: config.JWTConfig{
			Secret:      testJWTSecret,
			TokenExpiry: 30 * 24 * time.Hour,
		},
		Password: config.PasswordConfig{HashCost: bcrypt.MinCost},
		RateLimit: config.RateLimitConfig{
			Enabled:     true,
			MaxAttempts: loginAttemptLimit,
			Window:      15 * time.Minute,
		},
	}
}

// InitializeTestSuite starts one in-process API backed by SQLite and miniredis.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		cfg := testConfig()
		timeMock := mock.NewTime()
		database := mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
			"goals":        &model.GoalModel{},
		})
		redisClient := mock.NewRedis()

		injector := dependency.NewInjector(
			cfg,
			database.DbConn,
			adapters.NewRedisRateLimitStore(redisClient),
			timeMock.Now,
		)

		shared = &suite{
			server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
			db:       database,
			redis:    redisClient,
			timeMock: timeMock,
			injector: injector,
			tokens:   adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry),
		}
	})

	ctx.AfterSuite(func() {
		if shared != nil && shared.server != nil {
			shared.server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Step(`^(\d+) hours pass$`, test.hoursPass)

	// User setup steps
	ctx.Step(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Step(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^I use the token from the response$`, test.iUseTheTokenFromTheResponse)

	// Data setup steps
	ctx.Step(`^the following transactions exist for "([^"]*)":$`, test.theFollowingTransactionsExistFor)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, test.iSendRequestsToWithBody)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, test.iSaveTheResponseFieldAs)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Step(`^the response should be a list of (\d+) items?$`, test.theResponseShouldBeAListOf)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHave)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)
	ctx.Step(`^the response body should contain "([^"]*)"$`, test.theResponseBodyShouldContain)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.suite = shared
	t.headers = make(map[string]string)
	t.token = ""
	t.response = nil
	t.users = make(map[string]uuid.UUID)
	t.variables = make(map[string]string)

	t.timeMock.Reset()
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	t.injector.LoginRateLimiter.Reset()
	return t.db.ClearDB()
}
