package github

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/log"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
)

// KeyService is the service name of the GitHub access token in the OS keyring.
const KeyService = "suzuki-shunsuke/pep8-review"

func newKeyringTokenSource(logE *logrus.Entry) *ghtoken.TokenSource {
	return ghtoken.NewTokenSource(log.NewSlog(logE), KeyService)
}
