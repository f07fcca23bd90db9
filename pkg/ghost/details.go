package ghost

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/younsl/lbghost/internal/models"
	"github.com/younsl/lbghost/pkg/utils"
)

const detailSeparator = "; "

// BackendSetDetails summarizes each backend set as "name:healthy/total healthy".
// Health follows the classifier's offline policy.
func (c *Classifier) BackendSetDetails(sets map[string]models.BackendSet) string {
	details := make([]string, 0, len(sets))
	for _, name := range utils.SortedKeys(sets) {
		set := sets[name]
		details = append(details, fmt.Sprintf("%s:%d/%d healthy", name, c.healthyBackends(set), len(set.Backends)))
	}
	return strings.Join(details, detailSeparator)
}

// ListenerDetails summarizes each listener as "name:protocol:port->>backendSet"
func ListenerDetails(listeners map[string]models.Listener) string {
	details := make([]string, 0, len(listeners))
	for _, name := range utils.SortedKeys(listeners) {
		l := listeners[name]

		port := models.UnknownValue
		if l.Port > 0 {
			port = strconv.Itoa(l.Port)
		}

		details = append(details, fmt.Sprintf("%s:%s:%s->>%s",
			name,
			valueOr(l.Protocol, models.UnknownValue),
			port,
			valueOr(l.DefaultBackendSetName, "None"),
		))
	}
	return strings.Join(details, detailSeparator)
}

// TagDetails flattens freeform and defined tags into one display string
func TagDetails(freeform map[string]string, defined map[string]map[string]any) string {
	return strings.Join(utils.FlattenTags(freeform, defined), detailSeparator)
}
