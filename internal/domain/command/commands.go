package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdHelp        CommandType = "ajuda"
	CmdUpcoming    CommandType = "proximas"
	CmdUnit        CommandType = "uc"
	CmdSubscribe   CommandType = "subscrever"
	CmdUnsubscribe CommandType = "cancelar"
	CmdList        CommandType = "listar"
)

var commandTypes = map[string]CommandType{
	string(CmdHelp):        CmdHelp,
	string(CmdUpcoming):    CmdUpcoming,
	string(CmdUnit):        CmdUnit,
	string(CmdSubscribe):   CmdSubscribe,
	string(CmdUnsubscribe): CmdUnsubscribe,
	string(CmdList):        CmdList,
}

var (
	ErrNotCommand     = errors.New("not a command")
	ErrUnknownCommand = errors.New("unknown command")
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseMessage parses a chat message that must start with prefix.
// Messages without the prefix return ErrNotCommand.
func ParseMessage(prefix, content string) (*Command, error) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return nil, ErrNotCommand
	}

	body := strings.TrimPrefix(content, prefix)
	if strings.TrimSpace(body) == "" || strings.HasPrefix(body, " ") {
		return nil, ErrNotCommand
	}

	return ParseCommand(body)
}

// ParseCommand parses the text after the prefix (or the text of a slash
// command). Empty text is the help command.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmdType, ok := commandTypes[strings.ToLower(parts[0])]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}

	cmd := &Command{
		Type: cmdType,
		Raw:  text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// Arg returns the i-th argument, if present.
func (c *Command) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// IntArg parses the i-th argument as an integer, returning def when absent.
func (c *Command) IntArg(i, def int) (int, error) {
	arg, ok := c.Arg(i)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid integer argument %q: %w", arg, err)
	}
	return n, nil
}

// Rest joins every argument, for commands taking free text.
func (c *Command) Rest() string {
	return strings.Join(c.Args, " ")
}

func GetHelpText(prefix string) string {
	return "**📘 Comandos disponíveis:**\n" +
		"`" + prefix + "ajuda` - mostra esta mensagem\n" +
		"`" + prefix + "proximas [dias]` - lista avaliações nos próximos dias (default 7)\n" +
		"`" + prefix + "uc <sigla|slug>` - mostra detalhes de uma UC\n" +
		"`" + prefix + "subscrever <slug> [dias-antes]` - subscreve este canal para notificações desta UC\n" +
		"`" + prefix + "cancelar <slug>` - remove subscrição desta UC neste canal\n" +
		"`" + prefix + "listar` - lista subscrições deste canal\n"
}

// GetUsageText returns the syntax hint of a command with one example.
func GetUsageText(cmdType CommandType, prefix string) string {
	switch cmdType {
	case CmdUpcoming:
		return fmt.Sprintf("❗ Uso correto: `%[1]sproximas [dias]`\nExemplo: `%[1]sproximas 14`", prefix)
	case CmdUnit:
		return fmt.Sprintf("❗ Uso correto: `%[1]suc <sigla|slug>`\nExemplo: `%[1]suc p1` ou `%[1]suc fundamentos-programacao`", prefix)
	case CmdSubscribe:
		return fmt.Sprintf("❗ Uso correto: `%[1]ssubscrever <slug> [dias-antes]`\nExemplo: `%[1]ssubscrever p1 7` ou `%[1]ssubscrever fundamentos-programacao`", prefix)
	case CmdUnsubscribe:
		return fmt.Sprintf("❗ Uso correto: `%[1]scancelar <slug>`\nExemplo: `%[1]scancelar p1`", prefix)
	default:
		return GetHelpText(prefix)
	}
}
