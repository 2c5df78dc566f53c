package domain

import "time"

// DirectMessageGuildID is stored as the guild of subscriptions created
// outside a guild (direct messages).
const DirectMessageGuildID = "dm"

// DefaultDaysBefore is the lead time used when a subscription does not
// name one, and the window of the upcoming command without arguments.
const DefaultDaysBefore = 7

// UnitInfoLookaheadDays bounds the evaluations listed by the unit info command.
const UnitInfoLookaheadDays = 365

// UnknownField is rendered in place of optional course unit fields that
// the API did not send.
const UnknownField = "-"

// UnknownSigla is rendered for course units without a short code.
const UnknownSigla = "?"

// NotificationSendDelay spaces out consecutive notification messages.
const NotificationSendDelay = 500 * time.Millisecond

// DefaultCheckInterval is the interval of the periodic evaluation check.
const DefaultCheckInterval = 60 * time.Minute
