package device_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	"github.com/tijarati/tijarati_host/internal/platform/device"
)

type DeviceServiceTestSuite struct {
	suite.Suite
	dataDir string
	service *device.Service
	ctx     context.Context
}

func (suite *DeviceServiceTestSuite) SetupTest() {
	suite.dataDir = suite.T().TempDir()
	svc, err := device.NewService(suite.dataDir, slog.Default())
	suite.Require().NoError(err)
	suite.service = svc
	suite.ctx = context.Background()
}

func (suite *DeviceServiceTestSuite) TestSaveFileStripsDirectoryComponents() {
	msg, err := suite.service.SaveFile(suite.ctx, "../../etc/passwd", "text/plain", "payload")
	suite.Require().NoError(err)
	suite.Equal("File saved", msg)

	// The write lands inside the documents dir under the base name only.
	b, err := os.ReadFile(filepath.Join(suite.dataDir, "documents", "passwd"))
	suite.Require().NoError(err)
	suite.Equal("payload", string(b))
}

func (suite *DeviceServiceTestSuite) TestSaveFileDefaultsFileName() {
	_, err := suite.service.SaveFile(suite.ctx, "", "application/json", `{"transactions":[]}`)
	suite.Require().NoError(err)

	_, err = os.Stat(filepath.Join(suite.dataDir, "documents", "tijarati_backup.json"))
	suite.NoError(err)
}

func (suite *DeviceServiceTestSuite) TestPickFileReturnsNotOKWhenInboxEmpty() {
	_, ok, err := suite.service.PickFile(suite.ctx)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *DeviceServiceTestSuite) TestPickFileReadsJSONFromInbox() {
	inbox := filepath.Join(suite.dataDir, "inbox")
	suite.Require().NoError(os.WriteFile(filepath.Join(inbox, "notes.txt"), []byte("ignored"), 0o644))
	suite.Require().NoError(os.WriteFile(filepath.Join(inbox, "backup.json"), []byte(`{"partners":[]}`), 0o644))

	content, ok, err := suite.service.PickFile(suite.ctx)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal(`{"partners":[]}`, content)
}

func (suite *DeviceServiceTestSuite) TestShareTextSlugsTitleIntoFileName() {
	shared := ""
	suite.service.Sharer = func(path string) error {
		shared = path
		return nil
	}

	msg, err := suite.service.ShareText(suite.ctx, "Recu: Vente 250 MAD!", "receipt body")
	suite.Require().NoError(err)
	suite.Equal("Shared", msg)
	suite.Contains(filepath.Base(shared), "recu_vente_250_mad_")

	b, err := os.ReadFile(shared)
	suite.Require().NoError(err)
	suite.Equal("receipt body", string(b))
}

func (suite *DeviceServiceTestSuite) TestShareTextWithoutSharerDegradesToSave() {
	msg, err := suite.service.ShareText(suite.ctx, "Receipt", "body")
	suite.Require().NoError(err)
	suite.Equal("File saved", msg)
}

func (suite *DeviceServiceTestSuite) TestOpenExternalAllowList() {
	opened := []string{}
	suite.service.Opener = func(url string) error {
		opened = append(opened, url)
		return nil
	}

	for _, url := range []string{
		"https://example.com",
		"http://example.com",
		"mailto:me@example.com",
		"tel:+212600000000",
		"  https://padded.example.com  ",
	} {
		suite.NoError(suite.service.OpenExternal(suite.ctx, url))
	}
	suite.Len(opened, 5)

	for _, url := range []string{
		"javascript:alert(1)",
		"file:///etc/passwd",
		"ftp://example.com",
		"",
	} {
		err := suite.service.OpenExternal(suite.ctx, url)
		suite.ErrorIs(err, apperrors.ErrCapability)
	}
	suite.Len(opened, 5)
}

func (suite *DeviceServiceTestSuite) TestUnlockStateDefaultsLocked() {
	unlocked, err := suite.service.UnlockState(suite.ctx)
	suite.Require().NoError(err)
	suite.False(unlocked)
}

func (suite *DeviceServiceTestSuite) TestUnlockStateRoundTrip() {
	suite.Require().NoError(suite.service.SetUnlockState(suite.ctx, true))

	unlocked, err := suite.service.UnlockState(suite.ctx)
	suite.Require().NoError(err)
	suite.True(unlocked)

	suite.Require().NoError(suite.service.SetUnlockState(suite.ctx, false))

	unlocked, err = suite.service.UnlockState(suite.ctx)
	suite.Require().NoError(err)
	suite.False(unlocked)
}

func (suite *DeviceServiceTestSuite) TestCloudBackupRoundTrip() {
	suite.Require().NoError(suite.service.CloudBackup(suite.ctx, "user@example.com", `{"snapshot":1}`))

	content, err := suite.service.CloudRestore(suite.ctx, "user@example.com")
	suite.Require().NoError(err)
	suite.Equal(`{"snapshot":1}`, content)
}

func (suite *DeviceServiceTestSuite) TestCloudRestoreMissingUser() {
	_, err := suite.service.CloudRestore(suite.ctx, "nobody")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestDeviceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeviceServiceTestSuite))
}
