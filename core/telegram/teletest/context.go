// Package teletest provides an in-memory tele.Context for handler tests.
package teletest

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// Outgoing records one Send or Edit call.
type Outgoing struct {
	Text string
	Opts []interface{}
}

// Markup returns the reply markup passed with the call, if any.
func (o Outgoing) Markup() *tele.ReplyMarkup {
	for _, opt := range o.Opts {
		switch v := opt.(type) {
		case *tele.SendOptions:
			if v != nil && v.ReplyMarkup != nil {
				return v.ReplyMarkup
			}
		case *tele.ReplyMarkup:
			return v
		}
	}
	return nil
}

// ParseMode returns the parse mode passed with the call, if any.
func (o Outgoing) ParseMode() tele.ParseMode {
	for _, opt := range o.Opts {
		switch v := opt.(type) {
		case *tele.SendOptions:
			if v != nil {
				return v.ParseMode
			}
		case tele.ParseMode:
			return v
		}
	}
	return tele.ModeDefault
}

// Context implements the parts of tele.Context the bot uses. Calling any
// other method panics on the nil embedded interface.
type Context struct {
	tele.Context

	Upd tele.Update

	SendErr error
	EditErr error

	mu        sync.Mutex
	store     map[string]interface{}
	Sent      []Outgoing
	Edited    []Outgoing
	Responses []*tele.CallbackResponse
}

// NewMessage builds a context for a text message.
func NewMessage(chatID, userID int64, text string) *Context {
	return &Context{Upd: tele.Update{ID: 1, Message: &tele.Message{
		ID:     10,
		Sender: &tele.User{ID: userID},
		Chat:   &tele.Chat{ID: chatID, Type: tele.ChatPrivate},
		Text:   text,
	}}}
}

// NewCallback builds a context for a button press on a message in chatID.
func NewCallback(chatID, userID int64, data string) *Context {
	return &Context{Upd: tele.Update{ID: 2, Callback: &tele.Callback{
		ID:     "cb",
		Sender: &tele.User{ID: userID},
		Data:   data,
		Message: &tele.Message{
			ID:   10,
			Chat: &tele.Chat{ID: chatID, Type: tele.ChatPrivate},
		},
	}}}
}

// NewQuery builds a context for an inline query.
func NewQuery(userID int64, text string) *Context {
	return &Context{Upd: tele.Update{ID: 3, Query: &tele.Query{
		ID:     "q",
		Sender: &tele.User{ID: userID},
		Text:   text,
	}}}
}

func (c *Context) Update() tele.Update { return c.Upd }

func (c *Context) Message() *tele.Message {
	switch {
	case c.Upd.Message != nil:
		return c.Upd.Message
	case c.Upd.Callback != nil:
		return c.Upd.Callback.Message
	}
	return nil
}

func (c *Context) Callback() *tele.Callback { return c.Upd.Callback }

func (c *Context) Query() *tele.Query { return c.Upd.Query }

func (c *Context) Sender() *tele.User {
	switch {
	case c.Upd.Message != nil:
		return c.Upd.Message.Sender
	case c.Upd.Callback != nil:
		return c.Upd.Callback.Sender
	case c.Upd.Query != nil:
		return c.Upd.Query.Sender
	}
	return nil
}

func (c *Context) Chat() *tele.Chat {
	if m := c.Message(); m != nil {
		return m.Chat
	}
	return nil
}

func (c *Context) Text() string {
	if c.Upd.Message != nil {
		return c.Upd.Message.Text
	}
	return ""
}

func (c *Context) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[key]
}

func (c *Context) Set(key string, val interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = make(map[string]interface{})
	}
	c.store[key] = val
}

func (c *Context) Send(what interface{}, opts ...interface{}) error {
	if c.SendErr != nil {
		return c.SendErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sent = append(c.Sent, Outgoing{Text: asText(what), Opts: opts})
	return nil
}

func (c *Context) Reply(what interface{}, opts ...interface{}) error {
	return c.Send(what, opts...)
}

func (c *Context) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Edited = append(c.Edited, Outgoing{Text: asText(what), Opts: opts})
	return nil
}

func (c *Context) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := &tele.CallbackResponse{}
	if len(resp) > 0 && resp[0] != nil {
		r = resp[0]
	}
	c.Responses = append(c.Responses, r)
	return nil
}

// LastResponseText returns the toast text of the most recent Respond call.
func (c *Context) LastResponseText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Responses) == 0 {
		return ""
	}
	return c.Responses[len(c.Responses)-1].Text
}

func asText(what interface{}) string {
	if s, ok := what.(string); ok {
		return s
	}
	return ""
}
