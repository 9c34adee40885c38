//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package events

import (
	"net/url"

	"waben/pkg/httpclient"
	"waben/pkg/progress"
	"waben/pkg/version"

	"github.com/sirupsen/logrus"
)

// notify publishes the event on the in-process stream and, when a report
// URL is configured, forwards it to the supervising process.
func notify(e Event) {
	e.RunID = version.RunID()
	progress.Publish(progress.Update{
		Stage: e.Stage,
		Name:  e.Name,
		Value: e.Value,
		RunID: e.RunID,
	})

	if ReportURL == "" {
		return
	}

	client := httpclient.New().
		SetTransport(httpclient.CreateUnixTransport(ReportURL)).
		SetBaseURL("http://local").
		SetHeader("Content-Type", PlainTextContentType).
		SetQueryParams(map[string]string{
			"stage": e.Stage,
			"name":  e.Name,
			"value": url.QueryEscape(e.Value),
			"run":   e.RunID,
		})

	logrus.Debugf("Send Event to %s , stage: %s, name: %s, value: %s",
		ReportURL, e.Stage, e.Name, e.Value)

	if err := client.Get("notify"); err != nil {
		logrus.Warnf("Failed to notify %q: %v", ReportURL, err)
	}
}

// NotifyFind Generic Notifier for FindStage
func NotifyFind(name FindStageName, value ...string) {
	v := ""
	if len(value) > 0 {
		v = value[0]
	}
	notify(Event{Stage: Find, Name: string(name), Value: v})
}

// NotifyFix Generic Notifier for FixStage
func NotifyFix(name FixStageName, value ...string) {
	v := ""
	if len(value) > 0 {
		v = value[0]
	}
	notify(Event{Stage: Fix, Name: string(name), Value: v})
}

// NotifyExit Generic Notifier for Exit
func NotifyExit() {
	switch CurrentStage {
	case Find:
		NotifyFind(FindExit)
	case Fix:
		NotifyFix(FixExit)
	case "":
		// commands without a run lifecycle (doctor, clean) exit silently
	default:
		logrus.Warnf("Unknown stage %q", CurrentStage)
	}
}

// NotifyError Generic Notifier for Error
func NotifyError(err error) {
	notify(Event{Stage: CurrentStage, Name: kError, Value: err.Error()})
}
