package service

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"smart-mall-backend/internal/util"
)

func TestMain(m *testing.M) {
	util.Logger = zap.NewNop()
	os.Exit(m.Run())
}
