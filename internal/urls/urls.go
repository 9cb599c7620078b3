package urls

// Reference URLs for the catalog API.
// All URLs point to the public documentation at https://pokeapi.co/

// APIDocs is the root of the v2 API documentation.
const APIDocs = "https://pokeapi.co/docs/v2"

// PokemonResource documents the entry record: sprites, types, height,
// weight and base experience.
const PokemonResource = "https://pokeapi.co/docs/v2#pokemon"

// TypeResource documents the type record and its member list.
const TypeResource = "https://pokeapi.co/docs/v2#types"

// FairUse describes the API's rate and caching expectations.
const FairUse = "https://pokeapi.co/docs/v2#fairuse"
