package get_connector_types

import "github.com/m04kA/chargemate-booking/internal/service/bookings/models"

type ConnectorService interface {
	ConnectorTypes() *models.ConnectorTypesResponse
}
