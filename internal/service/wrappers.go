// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// JournalServiceWrapper decorates a JournalService, e.g. with validation.
type JournalServiceWrapper interface {
	Wrap(JournalService) JournalService
}

// MoodLogServiceWrapper decorates a MoodLogService, e.g. with validation.
type MoodLogServiceWrapper interface {
	Wrap(MoodLogService) MoodLogService
}
