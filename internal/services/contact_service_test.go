// internal/services/contact_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/aryals/dealer-backend/internal/models"
)

type ContactServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ContactService
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.service = NewContactService(suite.db)
}

func (suite *ContactServiceTestSuite) seedMessages() []models.ContactMessage {
	base := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	messages := []models.ContactMessage{
		{Name: "Sita Sharma", Email: "sita@example.com", Message: "Interested in the Model 3", Status: models.ContactStatusNew},
		{Name: "Ram Thapa", Email: "ram@example.com", Message: "Financing options?", Status: models.ContactStatusRead},
		{Name: "Hari Gurung", Email: "hari@example.com", Message: "Trade-in question", Status: models.ContactStatusNew},
		{Name: "Gita Rai", Email: "gita@example.com", Message: "Test drive availability", Status: models.ContactStatusReplied},
	}
	for i := range messages {
		messages[i].CreatedAt = base.AddDate(0, 0, i)
		suite.Require().NoError(suite.db.Create(&messages[i]).Error)
	}
	return messages
}

func (suite *ContactServiceTestSuite) TestCreateMessageStartsAsNew() {
	message, err := suite.service.CreateMessage(&CreateContactRequest{
		Name:    "Sita Sharma",
		Email:   "sita@example.com",
		Message: "Hello",
	})
	suite.NoError(err)
	suite.Equal(models.ContactStatusNew, message.Status)
	suite.NotZero(message.ID)
}

func (suite *ContactServiceTestSuite) TestCreateMessageValidation() {
	_, err := suite.service.CreateMessage(&CreateContactRequest{Name: "Sita"})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")

	_, err = suite.service.CreateMessage(&CreateContactRequest{
		Name: "Sita", Email: "not-an-email", Message: "Hi",
	})
	suite.Error(err)
}

func (suite *ContactServiceTestSuite) TestGetMessagesCountsIgnoreFilters() {
	suite.seedMessages()

	messages, counts, err := suite.service.GetMessages(ContactSearchParams{Status: "new"})
	suite.NoError(err)
	suite.Len(messages, 2)

	// Counts cover the whole inbox, not the filtered view
	suite.Equal(int64(4), counts.Total)
	suite.Equal(int64(2), counts.NewCount)
	suite.Equal(int64(1), counts.ReadCount)
	suite.Equal(int64(1), counts.RepliedCount)
}

func (suite *ContactServiceTestSuite) TestGetMessagesSearchMatchesNameOrEmail() {
	suite.seedMessages()

	messages, _, err := suite.service.GetMessages(ContactSearchParams{Search: "RAM"})
	suite.NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal("Ram Thapa", messages[0].Name)

	messages, _, err = suite.service.GetMessages(ContactSearchParams{Search: "gita@"})
	suite.NoError(err)
	suite.Len(messages, 1)
}

func (suite *ContactServiceTestSuite) TestGetMessagesDateRange() {
	suite.seedMessages()

	messages, _, err := suite.service.GetMessages(ContactSearchParams{
		StartDate: "2025-07-11",
		EndDate:   "2025-07-12",
	})
	suite.NoError(err)
	suite.Len(messages, 2)
}

func (suite *ContactServiceTestSuite) TestUpdateMessageStatus() {
	messages := suite.seedMessages()

	suite.NoError(suite.service.UpdateMessageStatus(messages[0].ID, "read"))

	updated, err := suite.service.GetMessage(messages[0].ID)
	suite.NoError(err)
	suite.Equal(models.ContactStatusRead, updated.Status)
}

func (suite *ContactServiceTestSuite) TestUpdateMessageStatusRejectsUnknown() {
	messages := suite.seedMessages()

	err := suite.service.UpdateMessageStatus(messages[0].ID, "archived")
	suite.Error(err)
	suite.Contains(err.Error(), "invalid status")

	err = suite.service.UpdateMessageStatus(9999, "read")
	suite.Error(err)
	suite.Contains(err.Error(), "not found")
}

func (suite *ContactServiceTestSuite) TestDeleteMessage() {
	messages := suite.seedMessages()

	suite.NoError(suite.service.DeleteMessage(messages[0].ID))
	suite.Error(suite.service.DeleteMessage(messages[0].ID))
}

func TestContactServiceSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
