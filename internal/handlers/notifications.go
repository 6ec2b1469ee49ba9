package handlers

// notificationCollector gathers the Arabic notification messages raised
// while handling one request, so they ride back on the JSON response.
// One collector per request; never shared.
type notificationCollector struct {
	messages []string
}

func (c *notificationCollector) Notify(message string) {
	c.messages = append(c.messages, message)
}

// Messages returns the collected notifications, never nil
func (c *notificationCollector) Messages() []string {
	if c.messages == nil {
		return []string{}
	}
	return c.messages
}
