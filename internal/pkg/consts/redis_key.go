package consts

const (
	WidgetDataKey    = "widget:data:"
	SnapshotSyncLock = "lock:snapshot:sync"
)
