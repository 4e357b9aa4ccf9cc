// Package token implements the 'pep8-review token' command.
// The token is stored in the OS keyring and used when PEP8_REVIEW_KEYRING_ENABLED is true.
package token

import (
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pep8-review/pkg/github"
	"github.com/suzuki-shunsuke/pep8-review/pkg/log"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/keyring/ghtoken"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	return ghtoken.Command(ghtoken.NewActor(log.NewSlog(logE), github.KeyService))
}
