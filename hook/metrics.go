// Copyright (C) 2026, Hookgate Project. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hookgate/hookgate/utils/wrappers"
)

type metrics struct {
	authorized,
	deniedNotTransferring,
	deniedNotWhitelisted,
	malformed prometheus.Counter
}

func newCounter(namespace, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

func (m *metrics) Initialize(namespace string, registerer prometheus.Registerer) error {
	m.authorized = newCounter(namespace, "authorized",
		"Number of transfers the gate approved")
	m.deniedNotTransferring = newCounter(namespace, "denied_not_transferring",
		"Number of invocations rejected for not being mid-transfer")
	m.deniedNotWhitelisted = newCounter(namespace, "denied_not_whitelisted",
		"Number of transfers rejected because the owner is not allow-listed")
	m.malformed = newCounter(namespace, "malformed_account",
		"Number of invocations rejected because the source account could not be decoded")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.authorized),
		registerer.Register(m.deniedNotTransferring),
		registerer.Register(m.deniedNotWhitelisted),
		registerer.Register(m.malformed),
	)
	return errs.Err
}
