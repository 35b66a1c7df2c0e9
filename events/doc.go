// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events publishes VoteCast events after a vote commits.

This is the hand-off point to the realtime-delivery collaborator: the
server emits one event per committed vote and consumers fan it out to
clients. Publishing is best-effort and never part of the vote transaction;
a failed publish is logged by the caller and the vote stands.

KafkaPublisher (segmentio/kafka-go) is used when KAFKA_BROKERS is
configured, NopPublisher otherwise.
*/
package events
