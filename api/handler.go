// Package api exposes the simulator over HTTP as a JSON service.
// It is an external consumer of the sim package: it validates input, runs the
// requested policies, and renders sim.Result values as JSON.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
)

// ScheduleRequest is the JSON body of a schedule call: the workload plus the
// policy parameters. Parameters for policies the call does not select are
// ignored.
type ScheduleRequest struct {
	Processes     []workload.ProcessSpec `json:"processes"`
	Quantum       int64                  `json:"quantum,omitempty"`
	AgingInterval int64                  `json:"aging_interval,omitempty"`
	MinPriority   int                    `json:"min_priority,omitempty"`
	Preemptive    bool                   `json:"preemptive,omitempty"`
	MLFQQuantums  []int64                `json:"mlfq_quantums,omitempty"`
	BoostInterval int64                  `json:"boost_interval,omitempty"`
}

func (req *ScheduleRequest) config() sim.Config {
	return sim.Config{
		Quantum:       req.Quantum,
		AgingInterval: req.AgingInterval,
		MinPriority:   req.MinPriority,
		Preemptive:    req.Preemptive,
		MLFQ:          sim.MLFQFromQuantums(req.MLFQQuantums, req.BoostInterval),
	}
}

// New builds the fiber application with all routes registered.
func New() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "schedsim"})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	v1.Post("/schedule", handleScheduleAll)
	v1.Post("/schedule/:policy", handleSchedule)

	return app
}

// handleSchedule runs a single named policy over the posted workload.
func handleSchedule(c *fiber.Ctx) error {
	req, spec, err := parseScheduleRequest(c)
	if err != nil {
		return badRequest(c, err)
	}
	policy, err := sim.NewPolicy(c.Params("policy"), req.config())
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(sim.Run(policy, spec.Instantiate()))
}

// handleScheduleAll runs every policy over the posted workload and returns
// the results in a fixed order.
func handleScheduleAll(c *fiber.Ctx) error {
	req, spec, err := parseScheduleRequest(c)
	if err != nil {
		return badRequest(c, err)
	}
	results, err := sim.RunAll(spec.Instantiate, sim.DefaultComparison(req.config()))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(results)
}

func parseScheduleRequest(c *fiber.Ctx) (*ScheduleRequest, *workload.Spec, error) {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, nil, errors.New("invalid request format")
	}
	spec := &workload.Spec{Processes: req.Processes}
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}
	return &req, spec, nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
