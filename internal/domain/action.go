package domain

// ActionSelection is the delivery option a requester picks for their message.
// Web is free (the requester sends the message themselves); the other three
// are paid actions fulfilled by external vendors.
type ActionSelection string

const (
	ActionWeb    ActionSelection = "web"
	ActionLetter ActionSelection = "letter"
	ActionFax    ActionSelection = "fax"
	ActionBoth   ActionSelection = "both"
)

// ParseAction validates a wire-level action string.
func ParseAction(s string) (ActionSelection, bool) {
	switch ActionSelection(s) {
	case ActionWeb, ActionLetter, ActionFax, ActionBoth:
		return ActionSelection(s), true
	}
	return "", false
}

// Channel is a concrete delivery medium invoked by the dispatcher.
type Channel string

const (
	ChannelPostalLetter    Channel = "postal_letter"
	ChannelFaxTransmission Channel = "fax_transmission"
)

// Channels returns the channel set the dispatcher must fan out over for a
// given action. Web has no dispatch channels.
func (a ActionSelection) Channels() []Channel {
	switch a {
	case ActionLetter:
		return []Channel{ChannelPostalLetter}
	case ActionFax:
		return []Channel{ChannelFaxTransmission}
	case ActionBoth:
		return []Channel{ChannelPostalLetter, ChannelFaxTransmission}
	}
	return nil
}

// Paid reports whether the action requires a confirmed payment before dispatch.
func (a ActionSelection) Paid() bool {
	return a == ActionLetter || a == ActionFax || a == ActionBoth
}
