package telemetry

var Collector = collector
