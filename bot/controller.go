package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/schedulebot/core/logger"
	tg "github.com/m3rciful/schedulebot/core/telegram"
	"github.com/m3rciful/schedulebot/core/telegram/callbacks"
	"github.com/m3rciful/schedulebot/core/telegram/commands"
	"github.com/m3rciful/schedulebot/core/telegram/format"
	tghelpers "github.com/m3rciful/schedulebot/core/telegram/helpers"
	"github.com/m3rciful/schedulebot/core/telegram/state"
	"github.com/m3rciful/schedulebot/core/telegram/ui"
	"github.com/m3rciful/schedulebot/schedule"
)

// Fetcher loads a group's weekly schedule.
type Fetcher interface {
	FetchSchedule(ctx context.Context, group string) (*schedule.Schedule, error)
}

// InlineAnswerer answers an inline query with results and a cache time.
type InlineAnswerer func(c tele.Context, results tele.Results, cacheTime int) error

// Options wires a Controller. Store, Groups and Fetcher are required.
type Options struct {
	Store   state.Store
	Groups  *schedule.Registry
	Fetcher Fetcher

	// Location decides the calendar day; nil keeps the clock's location.
	Location *time.Location
	Now      func() time.Time
	NewID    func() string
	Answer   InlineAnswerer
}

// Controller turns updates into schedule replies. Per-chat cursor updates
// run under the store's chat lock so concurrent updates for one chat apply
// in sequence.
type Controller struct {
	store   state.Store
	groups  *schedule.Registry
	fetcher Fetcher
	loc     *time.Location
	now     func() time.Time
	newID   func() string
	answer  InlineAnswerer

	username atomic.Value // string
}

// NewController validates opts and fills defaults.
func NewController(opts Options) (*Controller, error) {
	if opts.Store == nil || opts.Groups == nil || opts.Fetcher == nil {
		return nil, errors.New("bot: store, groups and fetcher are required")
	}
	ctl := &Controller{
		store:   opts.Store,
		groups:  opts.Groups,
		fetcher: opts.Fetcher,
		loc:     opts.Location,
		now:     opts.Now,
		newID:   opts.NewID,
		answer:  opts.Answer,
	}
	if ctl.now == nil {
		ctl.now = time.Now
	}
	if ctl.newID == nil {
		ctl.newID = uuid.NewString
	}
	if ctl.answer == nil {
		ctl.answer = ui.AnswerInline
	}
	ctl.username.Store(defaultBotUsername)
	return ctl, nil
}

// SetUsername sets the bot username quoted in the help text.
func (ctl *Controller) SetUsername(name string) {
	if name = strings.TrimPrefix(strings.TrimSpace(name), "@"); name != "" {
		ctl.username.Store(name)
	}
}

// Register binds the controller's handlers to reg.
func (ctl *Controller) Register(reg *tg.Registry) error {
	cmds := map[string]commands.Command{
		"/start":  {Handler: ctl.HandleStart, Description: "Как пользоваться ботом", Aliases: []string{"/help"}},
		"/groups": {Handler: ctl.HandleGroups, Description: "Список групп"},
		"/stats":  {Handler: ctl.HandleStats, Description: "Статистика", AdminOnly: true, Hidden: true},
	}
	for name, cmd := range cmds {
		if err := reg.RegisterCommand(name, cmd); err != nil {
			return err
		}
	}
	for _, key := range []string{dataPrevDay, dataNextDay} {
		if err := reg.RegisterCallback(key, ctl.HandleNavigate); err != nil {
			return err
		}
	}
	reg.SetTextFallback(ctl.HandleText)
	reg.SetInline(ctl.HandleInline)
	return nil
}

func (ctl *Controller) today() int {
	return schedule.TodayIndex(ctl.now(), ctl.loc)
}

// HandleStart replies with usage help.
func (ctl *Controller) HandleStart(c tele.Context) error {
	name, _ := ctl.username.Load().(string)
	return c.Send(fmt.Sprintf(helpText, name, name))
}

// HandleGroups lists the registered groups.
func (ctl *Controller) HandleGroups(c tele.Context) error {
	var b strings.Builder
	b.WriteString(msgGroupsHeader)
	for _, g := range ctl.groups.Groups() {
		b.WriteString("\n" + g.ID)
		if g.Description != "" {
			b.WriteString(": " + g.Description)
		}
	}
	return c.Send(b.String())
}

// HandleStats reports tracked chats and registry size.
func (ctl *Controller) HandleStats(c tele.Context) error {
	return c.Send(fmt.Sprintf(msgStatsFmt, ctl.store.Len(), ctl.groups.Len()))
}

// HandleRateLimited tells a throttled user to slow down. Only button presses
// get an answer; throttled messages are dropped silently.
func (ctl *Controller) HandleRateLimited(c tele.Context) error {
	return tghelpers.Notify(c, msgRateLimited)
}

// parseMention extracts the group token from "<mention> <group> ...".
func parseMention(text string) (string, error) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: group token missing", ErrMalformedInput)
	}
	return schedule.NormalizeID(parts[1]), nil
}

// HandleText selects a group from "<mention> <group>" and shows today's day.
func (ctl *Controller) HandleText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	id, err := parseMention(c.Text())
	if err != nil {
		ctl.outcome(ctx, "malformed", err)
		return c.Send(msgNeedGroup)
	}
	group, err := ctl.groups.Resolve(id)
	if err != nil {
		ctl.outcome(ctx, "unknown_group", err, slog.String("group", id))
		return c.Send(msgGroupNotFound)
	}

	chatID := tghelpers.ChatID(c)
	unlock := ctl.store.Lock(chatID)
	defer unlock()

	s, err := ctl.fetcher.FetchSchedule(ctx, group.ID)
	if err != nil {
		ctl.outcome(ctx, "fetch_failed", err, slog.String("group", group.ID))
		return c.Send(msgFetchFailed)
	}

	day := ctl.today()
	ctl.store.SetGroup(chatID, group.ID)
	ctl.store.SetDay(chatID, day)
	ctl.outcome(ctx, "selected", nil, slog.String("group", group.ID), slog.Int("day", day))
	return tghelpers.SendMD(c, schedule.FormatDay(s, day, true), navKeyboard())
}

// HandleNavigate moves the chat's cursor one day and edits the message in
// place. The cursor only moves once the new day has been rendered.
func (ctl *Controller) HandleNavigate(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	step, err := ParseDayStep(callbacks.CallbackKey(c))
	if err != nil {
		ctl.outcome(ctx, "malformed", err)
		return tghelpers.Notify(c, tg.UnknownActionText)
	}

	chatID := tghelpers.ChatID(c)
	unlock := ctl.store.Lock(chatID)
	defer unlock()

	cur, ok := ctl.store.Get(chatID)
	if !ok || cur.Group == "" {
		ctl.outcome(ctx, "no_selection", ErrNoSelection)
		return tghelpers.Notify(c, msgSelectFirst)
	}

	day := schedule.Step(cur.Day, int(step))
	s, err := ctl.fetcher.FetchSchedule(ctx, cur.Group)
	if err != nil {
		ctl.outcome(ctx, "fetch_failed", err, slog.String("group", cur.Group), slog.Int("day", day))
		return tghelpers.Notify(c, msgNavFetchFailed)
	}

	if err := tghelpers.EditMD(c, schedule.FormatDay(s, day, true), navKeyboard()); err != nil {
		_ = tghelpers.Notify(c, "")
		return fmt.Errorf("edit schedule message: %w", err)
	}
	ctl.store.SetDay(chatID, day)
	ctl.outcome(ctx, step.String(), nil, slog.String("group", cur.Group), slog.Int("day", day))
	return tghelpers.Notify(c, "")
}

// HandleInline offers today's schedule of every group matching the query.
// It ignores chat cursors and is never cached by Telegram.
func (ctl *Controller) HandleInline(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	query := ""
	if q := c.Query(); q != nil {
		query = q.Text
	}
	groups := ctl.groups.Match(query)
	day := ctl.today()

	results := make(tele.Results, 0, len(groups))
	for _, g := range groups {
		text := fmt.Sprintf(msgInlineFailedFmt, g.ID)
		if s, err := ctl.fetcher.FetchSchedule(ctx, g.ID); err == nil {
			text = schedule.FormatDay(s, day, false)
		}
		results = append(results, ui.Article{
			ID:          ctl.newID(),
			Title:       g.ID,
			Description: g.Description,
			ThumbURL:    g.Thumb,
			Text:        format.EscapeMarkdownV2(text),
			ParseMode:   tele.ModeMarkdownV2,
		}.Result())
	}

	ctl.outcome(ctx, "inline", nil, slog.Int("results", len(results)), slog.Int("day", day))
	return ctl.answer(c, results, 0)
}

func (ctl *Controller) outcome(ctx context.Context, outcome string, err error, attrs ...slog.Attr) {
	status := "ok"
	if err != nil {
		status = "skip"
		if errors.Is(err, schedule.ErrNotFound) {
			status = "not_found"
		}
		attrs = append(attrs, slog.String("err", logger.SanitizeLimit(err.Error(), 256)))
	}
	attrs = append([]slog.Attr{slog.String("status", status), slog.String("outcome", outcome)}, attrs...)
	logger.LogEvent(ctx, logger.TG, slog.LevelInfo, "schedule.outcome", attrs...)
}
