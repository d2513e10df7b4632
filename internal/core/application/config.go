package application

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-timelock/internal/core/ports"
	dbbadger "github.com/tdex-network/tdex-timelock/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/tdex-timelock/internal/infrastructure/storage/db/inmemory"
)

type Config struct {
	DBType   string
	DBConfig interface{}

	TokenGateway ports.TokenGateway
	Clock        ports.Clock
	PubSub       ports.PubSub

	// Optional, enable the simulation operations of the operator service.
	SimulatedToken SimulatedToken
	SimulatedClock SimulatedClock

	repo     ports.RepoManager
	escrow   EscrowService
	operator OperatorService
}

func (c *Config) Validate() error {
	if _, ok := SupportedDBType[c.DBType]; !ok {
		return fmt.Errorf("unsupported db type %s", c.DBType)
	}
	if c.TokenGateway == nil {
		return fmt.Errorf("missing token gateway")
	}
	if c.Clock == nil {
		return fmt.Errorf("missing clock")
	}
	if _, err := c.repoManager(); err != nil {
		return err
	}
	if _, err := c.escrowService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) RepoManager() ports.RepoManager {
	repo, _ := c.repoManager()
	return repo
}

func (c *Config) EscrowService() EscrowService {
	svc, _ := c.escrowService()
	return svc
}

func (c *Config) OperatorService() OperatorService {
	svc, _ := c.operatorService()
	return svc
}

func (c *Config) repoManager() (ports.RepoManager, error) {
	if c.repo == nil {
		switch c.DBType {
		case DBBadger:
			datadir, _ := c.DBConfig.(string)
			repoManager, err := dbbadger.NewRepoManager(datadir, log.New())
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBInMemory:
			c.repo = inmemory.NewRepoManager()
		default:
			return nil, fmt.Errorf("unsupported db type %s", c.DBType)
		}
	}
	return c.repo, nil
}

func (c *Config) escrowService() (EscrowService, error) {
	if c.escrow == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		escrow, err := NewEscrowService(repo, c.TokenGateway, c.Clock, c.PubSub)
		if err != nil {
			return nil, err
		}
		c.escrow = escrow
	}
	return c.escrow, nil
}

func (c *Config) operatorService() (OperatorService, error) {
	if c.operator == nil {
		c.operator = NewOperatorService(c.PubSub, c.SimulatedToken, c.SimulatedClock)
	}
	return c.operator, nil
}
