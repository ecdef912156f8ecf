package dashboard

import (
	"github.com/saulo-duarte/voicequiz/internal/apiclient"
	"github.com/saulo-duarte/voicequiz/internal/session"
)

type DashboardContainer struct {
	Service Service
}

func NewDashboardContainer(client *apiclient.Client) *DashboardContainer {
	return &DashboardContainer{
		Service: NewService(client),
	}
}

func (c *DashboardContainer) NewDashboard(user session.User) *Dashboard {
	return NewDashboard(c.Service, user)
}
