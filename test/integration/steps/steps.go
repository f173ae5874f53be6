package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/money-manager/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("server is not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) hoursPass(hours int) error {
	t.timeMock.Advance(time.Duration(hours) * time.Hour)
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	_, err := t.createUser(email, defaultTestPassword)
	return err
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	_, err := t.createUser(email, password)
	return err
}

func (t *testContext) createUser(email, password string) (uuid.UUID, error) {
	if id, ok := t.users[email]; ok {
		return id, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := t.timeMock.Now()
	user := &model.UserModel{
		ID:           uuid.New(),
		Name:         strings.Split(email, "@")[0],
		Email:        strings.ToLower(email),
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return uuid.Nil, err
	}

	t.users[email] = user.ID
	return user.ID, nil
}

// iAmLoggedInAs creates the user when needed and signs a token for it.
func (t *testContext) iAmLoggedInAs(email string) error {
	userID, err := t.createUser(email, defaultTestPassword)
	if err != nil {
		return err
	}

	token, err := t.tokens.GenerateToken(context.Background(), userID, strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}
	t.token = token
	return nil
}

func (t *testContext) iUseTheTokenFromTheResponse() error {
	value, err := t.responseField("token")
	if err != nil {
		return err
	}
	token, ok := value.(string)
	if !ok || token == "" {
		return fmt.Errorf("response token is not a string: %v", value)
	}
	t.token = token
	return nil
}

// theFollowingTransactionsExistFor inserts rows directly so that dates and
// creation times can lie in the past.
func (t *testContext) theFollowingTransactionsExistFor(email string, table *godog.Table) error {
	userID, err := t.createUser(email, defaultTestPassword)
	if err != nil {
		return err
	}
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header and at least one row")
	}

	columns := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[i] = cell.Value
	}

	now := t.timeMock.Now()
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(columns))
		for i, cell := range row.Cells {
			values[columns[i]] = cell.Value
		}

		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}

		date := now
		if raw, ok := values["daysAgo"]; ok {
			days, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid daysAgo %q: %w", raw, err)
			}
			date = now.AddDate(0, 0, -days)
		}
		if raw, ok := values["date"]; ok {
			if date, err = time.Parse(time.RFC3339, raw); err != nil {
				return fmt.Errorf("invalid date %q: %w", raw, err)
			}
		}

		division := values["division"]
		if division == "" {
			division = "Personal"
		}

		transaction := &model.TransactionModel{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        values["type"],
			Amount:      amount,
			Category:    values["category"],
			Division:    division,
			Description: values["description"],
			Date:        date.UTC(),
			CreatedAt:   date.UTC(),
			UpdatedAt:   date.UTC(),
		}
		if err := t.db.DbConn.Create(transaction).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.token = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = t.replacePlaceholders(value)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	t.variables[name] = fmt.Sprintf("%v", value)
	return nil
}

// replacePlaceholders substitutes {{name}} with values saved earlier in the scenario.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{token}}", t.token)
	content = strings.ReplaceAll(content, "{{today}}", t.timeMock.Now().Format(time.DateOnly))
	for name, value := range t.variables {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, bodyReader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
		raw:    string(bodyBytes),
	}

	var body any
	if err := json.Unmarshal(bodyBytes, &body); err == nil {
		t.response.body = body
		t.response.isJSON = true
	}

	return nil
}

func (t *testContext) requireResponse() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	return nil
}

func (t *testContext) responseField(field string) (any, error) {
	if err := t.requireResponse(); err != nil {
		return nil, err
	}
	if !t.response.isJSON {
		return nil, fmt.Errorf("response is not JSON: %s", t.response.raw)
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	return value, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	if !t.response.isJSON {
		return fmt.Errorf("response is not JSON: %s", t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if err := t.requireResponse(); err != nil {
		return err
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %s", t.response.raw)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %s", field, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' should not exist, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOf(count int) error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %s", t.response.raw)
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d: %s", count, len(items), t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHave(field string, count int) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	actual := t.response.header.Get(header)
	expected = t.replacePlaceholders(expected)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if err := t.requireResponse(); err != nil {
		return err
	}
	if !strings.Contains(t.response.raw, expected) {
		return fmt.Errorf("response body does not contain '%s': %s", expected, t.response.raw)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

// countRows counts rows including soft-deleted ones.
func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue walks a decoded JSON value along a dot separated path.
// Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
