package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/application/usecase/budget"
	"github.com/finance-planner/backend/internal/application/usecase/estate"
	"github.com/finance-planner/backend/internal/application/usecase/tax"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/adapters"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/persistence"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
	"github.com/finance-planner/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri             string
	headers         map[string]string
	client          *http.Client
	response        *response
	db              *mock.Db
	serverPort      int
	accessToken     string
	refreshToken    string
	currentUserID   uuid.UUID
	currentRecordID uuid.UUID
	currentBudgetID uuid.UUID
	currentPlanID   uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("finance_planner", map[string]any{
			"users":                &model.UserModel{},
			"refresh_tokens":       &model.RefreshTokenModel{},
			"tax_records":          &model.TaxRecordModel{},
			"tax_documents":        &model.TaxDocumentModel{},
			"budgets":              &model.BudgetModel{},
			"budget_transactions":  &model.BudgetTransactionModel{},
			"estate_plans":         &model.EstatePlanModel{},
			"estate_assets":        &model.AssetModel{},
			"estate_beneficiaries": &model.BeneficiaryModel{},
			"estate_guardians":     &model.GuardianModel{},
			"estate_documents":     &model.EstateDocumentModel{},
			"notification_queue":   &model.NotificationQueueModel{},
		}),
	}

	testDB = test.db
	if testClock == nil {
		testClock = mock.NewClock()
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Time setup steps
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Domain setup steps
	ctx.Given(`^a tax record exists for year (\d+)$`, test.aTaxRecordExistsForYear)
	ctx.Given(`^a budget exists named "([^"]*)" in category "([^"]*)" budgeting "([^"]*)"$`, test.aBudgetExistsNamedInCategoryBudgeting)
	ctx.Given(`^an estate plan exists named "([^"]*)"$`, test.anEstatePlanExistsNamed)
	ctx.Given(`^the estate plan review is due$`, test.theEstatePlanReviewIsDue)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentRecordID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentPlanID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	testClock.SetCurrentTime(time.Now().UTC())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			taxRepo := persistence.NewTaxRecordRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			estateRepo := persistence.NewEstatePlanRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			summaryCache := adapters.NewSummaryCache(mock.NewRedis(), 5*time.Minute)
			clock := testClock

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			updatePreferencesUseCase := auth.NewUpdatePreferencesUseCase(userRepo, clock)

			// Create tax record use cases
			createTaxRecordUseCase := tax.NewCreateTaxRecordUseCase(taxRepo, clock)
			getTaxRecordUseCase := tax.NewGetTaxRecordUseCase(taxRepo)
			listTaxRecordsUseCase := tax.NewListTaxRecordsUseCase(taxRepo)
			updateTaxRecordUseCase := tax.NewUpdateTaxRecordUseCase(taxRepo, clock)

			// Create budget use cases
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, summaryCache, clock)
			getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, summaryCache, clock)
			addTransactionUseCase := budget.NewAddTransactionUseCase(budgetRepo, summaryCache, clock)
			getSummaryUseCase := budget.NewGetSummaryUseCase(budgetRepo, summaryCache)
			listOverdueRecurringUseCase := budget.NewListOverdueRecurringUseCase(budgetRepo, clock)

			// Create estate plan use cases
			createEstatePlanUseCase := estate.NewCreateEstatePlanUseCase(estateRepo, clock)
			getEstatePlanUseCase := estate.NewGetEstatePlanUseCase(estateRepo)
			listEstatePlansUseCase := estate.NewListEstatePlansUseCase(estateRepo)
			updateEstatePlanUseCase := estate.NewUpdateEstatePlanUseCase(estateRepo, clock)
			listNeedingReviewUseCase := estate.NewListNeedingReviewUseCase(estateRepo, clock)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool {
					return testDB != nil && testDB.DbConn != nil
				},
				func() bool {
					return mock.NewRedis().Ping(context.Background()).Err() == nil
				},
			)

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				updatePreferencesUseCase,
			)

			taxRecordController := controller.NewTaxRecordController(
				createTaxRecordUseCase,
				getTaxRecordUseCase,
				listTaxRecordsUseCase,
				updateTaxRecordUseCase,
			)

			budgetController := controller.NewBudgetController(
				createBudgetUseCase,
				getBudgetUseCase,
				listBudgetsUseCase,
				updateBudgetUseCase,
				addTransactionUseCase,
				getSummaryUseCase,
				listOverdueRecurringUseCase,
			)

			estatePlanController := controller.NewEstatePlanController(
				createEstatePlanUseCase,
				getEstatePlanUseCase,
				listEstatePlansUseCase,
				updateEstatePlanUseCase,
				listNeedingReviewUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				taxRecordController,
				budgetController,
				estatePlanController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := testClock.Now()
	user := &model.UserModel{
		ID:              userID,
		Email:           email,
		Name:            name,
		PasswordHash:    hashPassword(password),
		BudgetAlerts:    true,
		ReviewReminders: true,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

// iAmLoggedInAs switches the current logged in user to the specified email,
// creating the user first when necessary.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found after create: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "finance-planner",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "finance-planner",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.SetCurrentTime(parsed)
	return nil
}

func (t *testContext) aTaxRecordExistsForYear(year int) error {
	recordID := uuid.New()
	t.currentRecordID = recordID

	now := testClock.Now()
	record := &model.TaxRecordModel{
		ID:                recordID,
		UserID:            t.currentUserID,
		TaxYear:           year,
		FilingStatus:      "single",
		Wages:             decimal.NewFromInt(80000),
		StandardDeduction: decimal.NewFromInt(14600),
		TotalIncome:       decimal.NewFromInt(80000),
		TotalDeductions:   decimal.NewFromInt(14600),
		TaxableIncome:     decimal.NewFromInt(65400),
		TaxOwed:           decimal.NewFromInt(9000),
		TaxPaid:           decimal.NewFromInt(8500),
		RefundOrOwed:      decimal.NewFromInt(-500),
		Status:            "draft",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(record).Error
}

func (t *testContext) aBudgetExistsNamedInCategoryBudgeting(name, category, amount string) error {
	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	budgeted, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	now := testClock.Now()
	budgetModel := &model.BudgetModel{
		ID:                budgetID,
		UserID:            t.currentUserID,
		Name:              name,
		Category:          category,
		BudgetedAmount:    budgeted,
		ActualAmount:      decimal.Zero,
		Period:            "monthly",
		Year:              now.Year(),
		Month:             int(now.Month()),
		Status:            "active",
		AlertsEnabled:     true,
		WarningThreshold:  80,
		CriticalThreshold: 95,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) anEstatePlanExistsNamed(name string) error {
	planID := uuid.New()
	t.currentPlanID = planID

	now := testClock.Now()
	nextReview := now.AddDate(1, 0, 0)
	plan := &model.EstatePlanModel{
		ID:             planID,
		UserID:         t.currentUserID,
		Name:           name,
		Type:           "will",
		Status:         "completed",
		LastReviewDate: &now,
		NextReviewDate: &nextReview,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(plan).Error
}

func (t *testContext) theEstatePlanReviewIsDue() error {
	pastReview := testClock.Now().AddDate(0, -1, 0)
	return t.db.DbConn.Model(&model.EstatePlanModel{}).
		Where("id = ?", t.currentPlanID).
		Update("next_review_date", pastReview).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{record_id}}", t.currentRecordID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{plan_id}}", t.currentPlanID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
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
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs remembers resource IDs from responses so later steps can
// reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	capture := func(object map[string]any) {
		idStr, ok := object["id"].(string)
		if !ok {
			return
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return
		}

		switch {
		case hasKey(object, "tax_year"):
			t.currentRecordID = id
		case hasKey(object, "budgeted_amount"):
			t.currentBudgetID = id
		case hasKey(object, "total_estate_value"):
			t.currentPlanID = id
		}
	}

	capture(body)
	if nested, ok := body["budget"].(map[string]any); ok {
		capture(nested)
	}
}

func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

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
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
