package consoles

const (
	Banner          = "\n--- Welcome to: Motorbike Adventure ---"
	CommandsLine    = "Commands: start, ride, speed, stop, change, quit"
	PromptCommand   = "Enter a command: "
	PromptStyle     = "Choose style (eco / aggressive): "
	PromptStartMode = "Choose start mode (key / silent): "
	PromptStopMode  = "Choose stop mode (normal / emergency): "

	MsgNeedStart      = "⚠️ You need to start the motorcycle first!"
	MsgAlreadyStopped = "⚠️ The motorcycle is already stopped."
	MsgSpeed          = "📏 Current speed: %d km/h"
	MsgOff            = "🛑 The motorcycle is off. Speed is 0 km/h."
	MsgChangeHeader   = "\n-- Change riding style --"
	MsgStyleSet       = "✅ Riding style set to: %s."
	MsgUnknownStyle   = "❌ Unknown style."
	MsgStartModeSet   = "✅ Start mode set to: %s."
	MsgStopModeSet    = "✅ Stop mode set to: %s."
	MsgUnknownMode    = "❌ Unknown mode."
	MsgStatus         = "📋 Engine: %s, speed: %d km/h, start: %s, ride: %s, stop: %s"
	MsgQuit           = "👋 Exiting the game. See you soon!"
	MsgInterrupted    = "\n👋 Interrupted. Exiting safely."
	MsgUnknownCommand = "❓ Unknown command."
	MsgUnexpected     = "❌ Unexpected error: %v"
	MsgLogFailed      = "❌ Failed to write to log file: %v"
	MsgErrStarting    = "❌ Error while starting: %v"
	MsgErrRiding      = "❌ Error while riding: %v"
	MsgErrStopping    = "❌ Error while stopping: %v"

	// RecordQuit is the action log line written by quit.
	RecordQuit = "Game ended by user."
)
