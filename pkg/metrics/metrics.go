// Package metrics defines the prometheus collectors recorded while deploying
// contracts and writes them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "ayurdeploy"

// Deploy groups the collectors of a single deploy run. A nil *Deploy is
// valid and records nothing.
type Deploy struct {
	registry    *prometheus.Registry
	stepSeconds *prometheus.HistogramVec
	gasUsed     *prometheus.GaugeVec
	blockNumber *prometheus.GaugeVec
	deployments prometheus.Counter
}

// NewDeploy creates the deploy collectors on a private registry.
func NewDeploy() *Deploy {
	d := &Deploy{
		registry: prometheus.NewRegistry(),
		stepSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "deploy_step_duration_seconds",
			Help:      "Duration of each deployment step.",
			Buckets:   DefaultBuckets,
		}, []string{"step"}),
		gasUsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deploy_gas_used",
			Help:      "Gas used by the contract creation transaction.",
		}, []string{"contract"}),
		blockNumber: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deploy_block_number",
			Help:      "Block the contract creation transaction was mined in.",
		}, []string{"contract"}),
		deployments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deployments_total",
			Help:      "Number of contracts deployed.",
		}),
	}
	d.registry.MustRegister(d.stepSeconds, d.gasUsed, d.blockNumber, d.deployments)

	return d
}

// ObserveStep records the duration of step measured from start.
func (d *Deploy) ObserveStep(step string, start time.Time) {
	if d == nil {
		return
	}
	d.stepSeconds.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

// ObserveDeployment records the receipt figures of a deployed contract.
func (d *Deploy) ObserveDeployment(contract string, gasUsed, blockNumber uint64) {
	if d == nil {
		return
	}
	d.gasUsed.WithLabelValues(contract).Set(float64(gasUsed))
	d.blockNumber.WithLabelValues(contract).Set(float64(blockNumber))
	d.deployments.Inc()
}

// Registry exposes the registry holding the collectors.
func (d *Deploy) Registry() *prometheus.Registry {
	return d.registry
}

// WriteTextfile writes all collected metrics to path atomically.
func (d *Deploy) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, d.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
