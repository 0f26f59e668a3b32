package services

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntake_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	user := seedCustomer(t, db, "a@x.com", 2)

	result, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, "a@x.com", result.UserEmail)
	assert.Len(t, result.ProductIDs, 2)
	assert.NotZero(t, result.ComplaintID)
	assert.Contains(t, result.Code, "CMP-")
	assert.NotEmpty(t, result.Message)

	c, err := svc.Detail(result.ComplaintID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, c.Status)
	assert.Equal(t, entity.PriorityMedium, c.Priority)
	assert.Nil(t, c.ResolvedAt)
	assert.Nil(t, c.AssignedMechanicID)

	// intake writes the initial pending event
	events, err := svc.History(result.ComplaintID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.StatusPending, events[0].Status)
	assert.Equal(t, "a@x.com", events[0].UpdatedBy)
}

func TestIntake_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)

	_, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "nobody@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
	})
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestIntake_ValidationEnumeratesEveryField(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 0)

	_, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "12345",
		Description:     "",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "contactNumber")
	assert.Contains(t, fields, "complaintDescription")
}

func TestIntake_ContactNumberWrongLength(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 1)

	_, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "98765",
		Description:     "Engine noise",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "contactNumber", verr.Fields[0].Field)

	_, err = svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "98765abcde",
		Description:     "Engine noise",
	})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "contactNumber", verr.Fields[0].Field)
}

func TestIntake_NoWriteOnValidationFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 1)

	_, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "bad",
		Description:     "",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Complaint{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIntake_ProductOwnershipAndWarranty(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	user := seedCustomer(t, db, "a@x.com", 1)
	other := seedCustomer(t, db, "b@x.com", 1)

	var foreign entity.Product
	require.NoError(t, db.Where("user_id = ?", other.ID).First(&foreign).Error)

	_, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
		ProductID:       &foreign.ID,
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "productId", verr.Fields[0].Field)

	// owned but out of warranty
	expired := entity.Product{
		Name: "Old Fridge", Category: "cooling",
		PurchaseDate:   time.Now().AddDate(-3, 0, 0),
		WarrantyMonths: 12,
		UserID:         user.ID,
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err = svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
		ProductID:       &expired.ID,
	})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "productId", verr.Fields[0].Field)
}

func TestIntake_GeneralComplaintWithoutProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 0)

	result, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Technician was late",
	})
	require.NoError(t, err)
	assert.Empty(t, result.ProductIDs)
}

func TestIntake_IdempotencyKeyReplay(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 1)

	first, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
		IdempotencyKey:  "req-123",
	})
	require.NoError(t, err)

	replay, err := svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
		IdempotencyKey:  "req-123",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ComplaintID, replay.ComplaintID)

	var count int64
	require.NoError(t, db.Model(&entity.Complaint{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIntake_ConcurrentSameKeyCreatesOneComplaint(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 1)

	// one connection keeps sqlite happy while the goroutines race on the key
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	const workers = 4
	results := make([]*IntakeResult, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Intake(&IntakeInput{
				RegisteredEmail: "a@x.com",
				ContactNumber:   "9876543210",
				Description:     "Engine noise",
				IdempotencyKey:  "req-777",
			})
		}(i)
	}
	wg.Wait()

	// every racer gets the same complaint back, never a persistence fault
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ComplaintID, results[i].ComplaintID)
	}

	var count int64
	require.NoError(t, db.Model(&entity.Complaint{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIntake_FailedCreateRemovesUpload(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 0)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// break the event table so the create transaction rolls back
	require.NoError(t, db.Migrator().DropTable(&entity.StatusEvent{}))

	_, err = svc.Intake(&IntakeInput{
		RegisteredEmail: "a@x.com",
		ContactNumber:   "9876543210",
		Description:     "Engine noise",
		PictureB64:      base64.StdEncoding.EncodeToString([]byte("picture-bytes")),
	})
	require.ErrorIs(t, err, ErrPersistence)

	entries, err := os.ReadDir(filepath.Join(dir, "uploads", "complaints"))
	if err == nil {
		assert.Empty(t, entries, "rolled-back intake left its upload behind")
	}
}

func TestSoftDelete_HidesFromActiveQueries(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)
	seedCustomer(t, db, "a@x.com", 1)
	c := seedComplaint(t, db, svc, "a@x.com")

	require.NoError(t, svc.SoftDelete(c.ID))

	_, err := svc.Detail(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the row itself survives for audit
	var raw entity.Complaint
	require.NoError(t, db.Unscoped().First(&raw, c.ID).Error)
	assert.True(t, raw.DeletedAt.Valid)
}
